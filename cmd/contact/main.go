package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"portfolio-contact/internal/contactform"
	"portfolio-contact/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("url", envOr("CONTACT_RELAY_URL", "http://localhost:8080"), "site base URL hosting the contact relay")
	name := fs.String("name", "", "sender name")
	addr := fs.String("email", "", "sender email address")
	message := fs.String("message", "", `message text, or "-" to read it from stdin`)
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "warn"), "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger.InitWithWriter(stderr, *logLevel)

	if *message == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "read message: %v\n", err)
			return 1
		}
		*message = strings.TrimRight(string(b), "\n")
	}

	form := contactform.NewContactForm()
	for field, value := range map[string]string{"name": *name, "email": *addr, "message": *message} {
		if err := form.Input(field, value); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	notifications := contactform.NewNotifications(contactform.RealClock())
	notifications.OnEvent(func(e contactform.Event) {
		if e.Type == contactform.EventShown {
			fmt.Fprintf(stdout, "[%s] %s\n", e.Notification.Kind, e.Notification.Message)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl := contactform.NewController(form, notifications, contactform.EndpointURL(*baseURL))
	outcome, err := ctrl.Submit(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if outcome.Kind != contactform.KindSuccess {
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
