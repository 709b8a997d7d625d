package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("passgen failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	generate := &cli.Command{
		Name:   "generate",
		Usage:  "print one or more random passwords",
		Flags:  generateFlags(),
		Action: runGenerate,
	}

	return &cli.App{
		Name:  "passgen",
		Usage: "generate cryptographically strong passwords",
		Before: func(*cli.Context) error {
			// A missing .env is fine; flags and the environment still apply.
			_ = godotenv.Load()
			return nil
		},
		Flags:  generateFlags(),
		Action: runGenerate,
		Commands: []*cli.Command{
			generate,
			{
				Name:  "token",
				Usage: "mint a bearer token for the statistics endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "subject",
						Usage:    "operator the token is issued to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "scope",
						Usage: "scope granted by the token",
						Value: crypto.ScopeStatsRead,
					},
					&cli.DurationFlag{
						Name:  "expiry",
						Usage: "token lifetime",
						Value: 24 * time.Hour,
					},
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "HMAC signing secret",
						EnvVars:  []string{"JWT_SECRET"},
						Required: true,
					},
				},
				Action: runToken,
			},
		},
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Usage:   fmt.Sprintf("password length, clamped to %d-%d", crypto.MinLength, crypto.MaxLength),
			Value:   crypto.DefaultLength,
		},
		&cli.BoolFlag{Name: "lowercase", Usage: "include lowercase letters", Value: true},
		&cli.BoolFlag{Name: "uppercase", Usage: "include uppercase letters", Value: true},
		&cli.BoolFlag{Name: "numbers", Usage: "include digits", Value: true},
		&cli.BoolFlag{Name: "special", Usage: "include punctuation", Value: true},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of passwords to print",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:    "show-strength",
			Aliases: []string{"s"},
			Usage:   "print entropy and strength next to each password",
		},
	}
}

func runGenerate(c *cli.Context) error {
	lower, upper := c.Bool("lowercase"), c.Bool("uppercase")
	numbers, special := c.Bool("numbers"), c.Bool("special")
	req := model.GenerateRequest{
		Length:    c.Int("length"),
		Lowercase: &lower,
		Uppercase: &upper,
		Numbers:   &numbers,
		Special:   &special,
	}

	svc := service.NewGeneratorService(nil)
	for i := 0; i < max(c.Int("count"), 1); i++ {
		resp, err := svc.Generate(c.Context, req)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}

		if c.Bool("show-strength") {
			strength := crypto.Strength(resp.Strength)
			fmt.Fprintf(c.App.Writer, "%s\t%.1f bits\t%s (%d%%)\n",
				resp.Password, resp.EntropyBits, strength, strength.Percent())
			continue
		}
		fmt.Fprintln(c.App.Writer, resp.Password)
	}

	return nil
}

func runToken(c *cli.Context) error {
	token, err := crypto.GenerateToken(c.String("subject"), c.String("scope"), c.String("secret"), c.Duration("expiry"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}
