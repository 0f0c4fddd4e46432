package client

import "time"

// Endpoint is a managed device record.
type Endpoint struct {
	ID           string    `json:"EndpointId"`
	Name         string    `json:"Name"`
	Fqdn         string    `json:"Fqdn"`
	OsType       string    `json:"OsType"`
	OsVersion    string    `json:"OsVersion"`
	TenantID     string    `json:"TenantId"`
	PowerState   string    `json:"PowerState"`
	AmtVersion   string    `json:"AmtVersion"`
	AmtActivated bool      `json:"AmtActivated"`
	LastSeen     time.Time `json:"LastSeen"`
}

// EndpointFilter narrows an endpoint list request. Only non-empty fields
// are serialized into the query string.
type EndpointFilter struct {
	// Name filters by the endpoint's display name.
	Name string

	// Fqdn filters by fully qualified domain name.
	Fqdn string

	// OsType filters by operating system type (e.g., "Windows").
	OsType string

	// TenantID filters by owning tenant.
	TenantID string

	// PowerState filters by last reported power state.
	PowerState string
}

// HardwareInfo is the hardware inventory sub-resource of an endpoint.
type HardwareInfo struct {
	EndpointID   string `json:"EndpointId"`
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
	SerialNumber string `json:"SerialNumber"`
	BiosVersion  string `json:"BiosVersion"`
	Processor    string `json:"Processor"`
	MemoryBytes  int64  `json:"MemoryBytes"`
	Disks        []Disk `json:"Disks"`
}

// Disk describes one physical disk in an endpoint's inventory.
type Disk struct {
	Model     string `json:"Model"`
	SizeBytes int64  `json:"SizeBytes"`
	MediaType string `json:"MediaType"`
}

// IPConfiguration carries the network settings applied during AMT
// provisioning.
type IPConfiguration struct {
	DHCP         bool   `json:"DhcpEnabled"`
	IPAddress    string `json:"IpAddress,omitempty"`
	Netmask      string `json:"Netmask,omitempty"`
	Gateway      string `json:"Gateway,omitempty"`
	PrimaryDNS   string `json:"PrimaryDns,omitempty"`
	SecondaryDNS string `json:"SecondaryDns,omitempty"`
}

// AMTProfile is the provisioning payload for Intel AMT activation.
type AMTProfile struct {
	EndpointID      string          `json:"EndpointId"`
	ProfileName     string          `json:"ProfileName"`
	Activation      string          `json:"Activation"`
	MebxPassword    string          `json:"MebxPassword,omitempty"`
	IPConfiguration IPConfiguration `json:"IpConfiguration"`
}

// Tenant is an organizational unit owning endpoints and users.
type Tenant struct {
	ID          string `json:"TenantId"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// User is an operator account on the EMC server.
type User struct {
	ID          string `json:"UserId"`
	Upn         string `json:"Upn"`
	DisplayName string `json:"DisplayName"`
	Role        string `json:"Role"`
	TenantID    string `json:"TenantId"`
}
