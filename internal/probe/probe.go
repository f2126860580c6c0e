// Package probe implements the protocol checks behind each monitored
// service. A probe never fails with a Go error: every way a check can go
// wrong (refused, unreachable, timed out, bad status) comes back as an
// Outcome carrying a Down status and a message.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lookout-dev/lookout/internal/config"
)

// Outcome is the result of a single probe.
type Outcome struct {
	// Up reports whether the service answered.
	Up bool

	// Message explains a failed probe. Empty when Up.
	Message string
}

// Dispatcher routes probes by protocol. One Dispatcher is shared across all
// rounds so the HTTP client can reuse connections between checks.
type Dispatcher struct {
	httpClient *http.Client
}

// NewDispatcher creates a Dispatcher with a shared HTTP client. Per-probe
// deadlines come from the request context, so the client itself carries no
// global timeout.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        64,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Check probes one service on one host, bounded by the service's resolved
// timeout. The configured protocol selects the check.
func (d *Dispatcher) Check(ctx context.Context, host config.HostConfig, svc config.ServiceConfig) Outcome {
	timeout := svc.Timeout
	if timeout <= 0 {
		timeout = config.DefaultServiceTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch svc.Protocol {
	case config.ProtocolTCP:
		return d.checkTCP(ctx, host.Address, svc.Port)
	case config.ProtocolUDP:
		return d.checkUDP(ctx)
	case config.ProtocolHTTP, config.ProtocolHTTPS:
		return d.checkHTTP(ctx, svc.Protocol, host.Address, svc.Port, svc.Path)
	default:
		return Outcome{Message: fmt.Sprintf("unsupported protocol %q", svc.Protocol)}
	}
}

// checkTCP attempts a raw connect to address:port. A completed handshake
// is Up; the connection is closed immediately.
func (d *Dispatcher) checkTCP(ctx context.Context, address string, port int) Outcome {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return Outcome{Message: dialFailureMessage(err, "Connection timeout")}
	}
	conn.Close()
	return Outcome{Up: true}
}

// checkUDP binds a local ephemeral UDP socket and reports Up when the bind
// succeeds. UDP is connectionless, so without a protocol-specific payload
// there is nothing to send that would prove the remote service is alive;
// this check only demonstrates local socket availability.
func (d *Dispatcher) checkUDP(ctx context.Context) Outcome {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", ":0")
	if err != nil {
		if timeoutError(err) || ctx.Err() != nil {
			return Outcome{Message: "UDP socket creation timeout"}
		}
		return Outcome{Message: err.Error()}
	}
	conn.Close()
	return Outcome{Up: true}
}

// checkHTTP issues a GET against the built URL. Any 2xx answer is Up; every
// other status is Down with the code in the message.
func (d *Dispatcher) checkHTTP(ctx context.Context, proto config.Protocol, address string, port int, path string) Outcome {
	target := buildURL(proto, address, port, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Outcome{Message: err.Error()}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		if timeoutError(err) {
			if proto == config.ProtocolHTTPS {
				return Outcome{Message: "HTTPS request timeout"}
			}
			return Outcome{Message: "HTTP request timeout"}
		}
		return Outcome{Message: requestFailureMessage(err)}
	}
	defer resp.Body.Close()

	// Drain a little so keep-alive connections can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{Up: true}
	}
	return Outcome{Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
}

// buildURL assembles the probe URL, omitting the port when it matches the
// scheme default so the request looks like ordinary browser traffic.
func buildURL(proto config.Protocol, address string, port int, path string) string {
	defaultPort := 80
	if proto == config.ProtocolHTTPS {
		defaultPort = 443
	}

	base := string(proto) + "://" + address
	if port != defaultPort {
		base = fmt.Sprintf("%s:%d", base, port)
	}
	return base + path
}

// dialFailureMessage categorizes a dial error into a short human message,
// falling back to the raw error text.
func dialFailureMessage(err error, timeoutMsg string) string {
	if timeoutError(err) {
		return timeoutMsg
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused"
	}
	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		return "Host unreachable"
	}
	return err.Error()
}

// requestFailureMessage strips the url.Error envelope so messages read
// "connection refused" instead of 'Get "http://...": connection refused'.
func requestFailureMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// timeoutError reports whether err was caused by a deadline, either from
// the probe context or the network stack.
func timeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
