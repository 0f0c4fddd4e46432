// Command emc-cli is an example client for the EMC endpoint-management API.
//
// Password can be provided via:
//   - -pass flag (least secure, visible in process list)
//   - EMC_PASSWORD environment variable (recommended)
//   - stdin prompt (if neither flag nor env var is set)
//
// Usage:
//
//	emc-cli -host <server> -user <upn> -domain -action list
//
// Examples:
//
//	# List Windows endpoints using domain credentials
//	export EMC_PASSWORD='secret'
//	emc-cli -host emc.corp.example.com -user admin@corp.example.com -domain -action list -os Windows
//
//	# Power an endpoint on using the client-credentials grant
//	emc-cli -host emc.corp.example.com -grant client_credentials \
//	    -client-id svc-oob -client-secret "$EMC_CLIENT_SECRET" \
//	    -action powerOn -endpoint 7f3a...
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/emckit/go-emc/auth"
	"github.com/emckit/go-emc/client"
	intlog "github.com/emckit/go-emc/internal/log"
)

func main() {
	host := flag.String("host", "", "EMC server host name")
	port := flag.Int("port", 0, "EMC API port (default: scheme default)")
	username := flag.String("user", "", "Account principal (UPN in domain mode)")
	password := flag.String("pass", "", "Password (use EMC_PASSWORD env var instead)")
	clientID := flag.String("client-id", "", "OAuth client ID (client_credentials grant)")
	clientSecret := flag.String("client-secret", "", "OAuth client secret")
	useDomain := flag.Bool("domain", false, "Authenticate with Windows domain credentials")
	grant := flag.String("grant", "", "OAuth grant type: password or client_credentials")
	insecure := flag.Bool("insecure", false, "Skip TLS certificate verification")
	proxy := flag.String("proxy", "", "Proxy URL, or 'direct' to disable proxying")
	timeout := flag.Duration("timeout", 60*time.Second, "Request timeout")
	action := flag.String("action", "list", "Action: list, get, hw, delete, powerOn, powerOff, hibernate, sleep, bios")
	endpointID := flag.String("endpoint", "", "Endpoint ID for per-endpoint actions")
	osType := flag.String("os", "", "Filter list by OS type")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)

	if *host == "" {
		fmt.Fprintln(os.Stderr, "error: -host is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := client.DefaultConfig()
	cfg.Host = *host
	cfg.Port = *port
	cfg.InsecureSkipVerify = *insecure
	cfg.Proxy = *proxy
	cfg.Timeout = *timeout
	cfg.UseDomainCredentials = *useDomain
	cfg.GrantType = auth.GrantType(*grant)
	cfg.Username = *username
	cfg.ClientID = *clientID
	cfg.ClientSecret = *clientSecret
	cfg.Logger = logger

	cfg.Password = resolvePassword(*password, cfg)

	c, err := client.New(cfg)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := c.Authenticate(ctx); err != nil {
		logger.Error("authentication failed", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, c, *action, *endpointID, *osType); err != nil {
		logger.Error("action failed", "action", *action, "error", err)
		os.Exit(1)
	}
}

// newLogger builds a redacting text logger on stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(intlog.NewRedactingHandler(handler))
}

// resolvePassword picks the password from flag, environment, or an
// interactive prompt. The client-credentials grant needs no password.
func resolvePassword(flagValue string, cfg client.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("EMC_PASSWORD"); env != "" {
		return env
	}
	if cfg.GrantType == auth.GrantClientCredentials {
		return ""
	}

	fmt.Fprint(os.Stderr, "Password: ")
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return ""
	}
	return string(secret)
}

func run(ctx context.Context, c *client.Client, action, endpointID, osType string) error {
	switch action {
	case "list":
		var filter *client.EndpointFilter
		if osType != "" {
			filter = &client.EndpointFilter{OsType: osType}
		}
		endpoints, err := c.ListEndpoints(ctx, filter)
		if err != nil {
			return err
		}
		for _, ep := range endpoints {
			fmt.Printf("%-36s  %-25s  %-10s  %s\n", ep.ID, ep.Name, ep.PowerState, ep.OsType)
		}
		return nil

	case "get":
		ep, err := c.GetEndpoint(ctx, endpointID)
		if err != nil {
			return err
		}
		fmt.Printf("ID:          %s\n", ep.ID)
		fmt.Printf("Name:        %s\n", ep.Name)
		fmt.Printf("FQDN:        %s\n", ep.Fqdn)
		fmt.Printf("OS:          %s %s\n", ep.OsType, ep.OsVersion)
		fmt.Printf("Power state: %s\n", ep.PowerState)
		fmt.Printf("AMT:         %s (activated: %v)\n", ep.AmtVersion, ep.AmtActivated)
		fmt.Printf("Last seen:   %s\n", ep.LastSeen.Format(time.RFC3339))
		return nil

	case "hw":
		info, err := c.GetHardwareInfo(ctx, endpointID)
		if err != nil {
			return err
		}
		fmt.Printf("Manufacturer: %s\n", info.Manufacturer)
		fmt.Printf("Model:        %s\n", info.Model)
		fmt.Printf("Serial:       %s\n", info.SerialNumber)
		fmt.Printf("BIOS:         %s\n", info.BiosVersion)
		fmt.Printf("Processor:    %s\n", info.Processor)
		fmt.Printf("Memory:       %s\n", formatBytes(info.MemoryBytes))
		for _, disk := range info.Disks {
			fmt.Printf("Disk:         %s %s (%s)\n", disk.Model, formatBytes(disk.SizeBytes), disk.MediaType)
		}
		return nil

	case "delete":
		return c.DeleteEndpoint(ctx, endpointID)
	case "powerOn":
		return c.PowerOn(ctx, endpointID)
	case "powerOff":
		return c.PowerOff(ctx, endpointID)
	case "hibernate":
		return c.Hibernate(ctx, endpointID)
	case "sleep":
		return c.Sleep(ctx, endpointID)
	case "bios":
		return c.BootToBIOS(ctx, endpointID)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// formatBytes converts bytes to human-readable format (KB, MB, GB).
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
