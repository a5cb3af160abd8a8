// Package cmd implements pricectl, a command line front end to the pricing
// engine that works offline against a catalog file.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hotel_pricing/internal/adapters/observability"
	"hotel_pricing/internal/app"
	"hotel_pricing/internal/catalog"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/validation"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pricectl",
	Short: "Recommends nightly room prices from a competitor catalog",
	Long: `pricectl runs the price recommendation engine against the embedded
Toulouse catalog or a catalog file and prints the result as JSON or a table.
Every flag can also be set as PRICING_<FLAG> in the environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl := zerolog.WarnLevel
		if viper.GetBool("verbose") {
			lvl = zerolog.DebugLevel
		}
		log.Logger = observability.NewLoggerTo(os.Stderr, "dev").Level(lvl)

		switch viper.GetString("output") {
		case "json", "table":
			return nil
		default:
			return fmt.Errorf("unknown output %q (json or table)", viper.GetString("output"))
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pricectl.yaml)")
	pf.String("catalog", "", "catalog JSON file (default: embedded catalog)")
	pf.StringP("output", "o", "table", "output format: json or table")
	pf.String("policy", "premium", "occupancy policy: premium or discount")
	pf.Bool("verbose", false, "debug logging on stderr")

	pf.Float64("occupancy", domain.DefaultScenario().DesiredOccupancy, "desired occupancy (0-1)")
	pf.String("demand", "stable", "demand regime (low, stable, peak) or index")
	pf.Float64("floor", domain.DefaultScenario().FloorPrice, "price floor")
	pf.Float64("ceiling", domain.DefaultScenario().CeilingPrice, "price ceiling")
	pf.Bool("upscale", false, "include upscale competitors")

	cobra.CheckErr(viper.BindPFlags(pf))

	rootCmd.AddCommand(recommendCmd, sweepCmd, segmentsCmd, catalogCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pricectl")
	}

	viper.SetEnvPrefix("PRICING")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadCatalog() (domain.Catalog, error) {
	if path := viper.GetString("catalog"); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}

func scenario() (domain.PricingScenario, error) {
	demand, err := domain.ParseDemand(viper.GetString("demand"))
	if err != nil {
		return domain.PricingScenario{}, err
	}
	sc := domain.PricingScenario{
		DesiredOccupancy: viper.GetFloat64("occupancy"),
		DemandIndex:      demand,
		FloorPrice:       viper.GetFloat64("floor"),
		CeilingPrice:     viper.GetFloat64("ceiling"),
		IncludeUpscale:   viper.GetBool("upscale"),
	}
	if err := validation.Scenario(sc); err != nil {
		return domain.PricingScenario{}, err
	}
	return sc, nil
}

// service wires an uncached recommendation service over the selected catalog.
func service() (*app.RecommendationService, domain.PricingScenario, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, domain.PricingScenario{}, err
	}
	sc, err := scenario()
	if err != nil {
		return nil, domain.PricingScenario{}, err
	}
	svc, err := app.NewRecommendationService(cat, viper.GetString("policy"), nil, time.Minute)
	if err != nil {
		return nil, domain.PricingScenario{}, err
	}
	log.Debug().Str("catalog", cat.Version).Interface("scenario", sc).Msg("scenario ready")
	return svc, sc, nil
}
