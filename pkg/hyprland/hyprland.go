// Hyprland backend on top of github.com/thiagokokada/hyprland-go: its request client for
// queries and commands, its event client for the event stream.
package hyprland

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/function61/hyprws/pkg/compositor"
	hyprgo "github.com/thiagokokada/hyprland-go"
	"github.com/thiagokokada/hyprland-go/event"
)

var ErrNotRunning = errors.New("Hyprland not running (HYPRLAND_INSTANCE_SIGNATURE not set)")

// the subset of hyprgo.RequestClient we use, so tests can swap it out
type requester interface {
	Monitors() ([]hyprgo.Monitor, error)
	Dispatch(params ...string) ([]hyprgo.Response, error)
	Keyword(params ...string) ([]hyprgo.Response, error)
}

// blocks delivering eventTypes to handler until the stream breaks or ctx is canceled
type subscriber func(ctx context.Context, handler event.EventHandler, eventTypes ...event.EventType) error

type Client struct {
	requests  requester
	subscribe subscriber
}

var (
	_ compositor.Compositor = (*Client)(nil)
	_ requester             = (*hyprgo.RequestClient)(nil)
)

func New(requests requester, subscribe subscriber) *Client {
	return &Client{
		requests:  requests,
		subscribe: subscribe,
	}
}

// sockets are located by hyprland-go from HYPRLAND_INSTANCE_SIGNATURE and XDG_RUNTIME_DIR
func NewFromEnv() (*Client, error) {
	if !IsRunning() {
		return nil, ErrNotRunning
	}

	requests, err := fromMust(hyprgo.MustClient)
	if err != nil {
		return nil, err
	}

	return New(requests, subscribeFromEnv), nil
}

func IsRunning() bool {
	return os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

func (c *Client) Dispatch(_ context.Context, cmd compositor.Command) error {
	args, err := CommandArgs(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", compositor.ErrDispatchFailure, err)
	}

	// ["keyword", "wsbind", "31,DP-1"] => Keyword("wsbind 31,DP-1")
	verb, params := args[0], strings.Join(args[1:], " ")

	var responses []hyprgo.Response
	switch verb {
	case "dispatch":
		responses, err = c.requests.Dispatch(params)
	case "keyword":
		responses, err = c.requests.Keyword(params)
	default:
		return fmt.Errorf("%w: %s: unsupported verb %s", compositor.ErrDispatchFailure, cmd, verb)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", compositor.ErrDispatchFailure, cmd, err)
	}

	return checkResponses(cmd, responses)
}

// Hyprland answers "ok" to each command it accepted
func checkResponses(cmd compositor.Command, responses []hyprgo.Response) error {
	for _, response := range responses {
		if trimmed := strings.TrimSpace(string(response)); trimmed != "ok" {
			return fmt.Errorf("%w: %s: %s", compositor.ErrDispatchFailure, cmd, trimmed)
		}
	}

	return nil
}

// hyprland-go's constructors that locate the sockets from the environment panic on failure
func fromMust[T any](mustConstruct func() T) (result T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrNotRunning, recovered)
		}
	}()

	return mustConstruct(), nil
}
