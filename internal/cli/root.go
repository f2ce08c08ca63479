package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cronograma/internal/config"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the service and environment hooks used by CLI commands.
type App struct {
	Plans service.PlanService

	// Viper resolves --user against CRONOGRAMA_USER and the config file.
	// Without it the flag value is used as is.
	Viper *viper.Viper

	Now           func() time.Time
	IsInteractive func() bool
}

const (
	flagUser  = "user"
	flagToday = "today"
)

// NewRootCmd creates the top-level "cronograma" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cronograma",
		Short:         "ENEM study schedule generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String(flagUser, config.DefaultUser, "Profile whose plan is used")
	root.PersistentFlags().String(flagToday, "", "Treat this date (YYYY-MM-DD) as today")
	_ = root.PersistentFlags().MarkHidden(flagToday)
	if app.Viper != nil {
		_ = app.Viper.BindPFlag(config.KeyUser, root.PersistentFlags().Lookup(flagUser))
	}

	root.AddCommand(
		newTopicsCmd(app),
		newConfigCmd(app),
		newGenerateCmd(app),
		newShowCmd(app),
		newCheckCmd(app, true),
		newCheckCmd(app, false),
		newRecalculateCmd(app),
		newFreeDayCmd(app),
		newResetCmd(app),
		newHistoryCmd(app),
		newWizardCmd(app),
		newViewCmd(app),
	)

	return root
}

// userID resolves the active profile.
func (a *App) userID(cmd *cobra.Command) string {
	var user string
	if a.Viper != nil {
		user = a.Viper.GetString(config.KeyUser)
	} else if f := cmd.Flag(flagUser); f != nil {
		user = f.Value.String()
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return config.DefaultUser
	}
	return user
}

// today returns the --today override, or the current date.
func (a *App) today(cmd *cobra.Command) (time.Time, error) {
	if f := cmd.Flag(flagToday); f != nil && f.Value.String() != "" {
		t, err := time.Parse(domain.DateLayout, f.Value.String())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --today %q: use YYYY-MM-DD", f.Value.String())
		}
		return t, nil
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
