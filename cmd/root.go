/*
 * This file is part of aarovia.
 *
 * aarovia is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * aarovia is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with aarovia.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/TanujTS/aarovia-sub001/engine"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var e, _ = engine.NewAccessControlEngine()
var rootCmd = e.Cmd

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the access control api server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.Configure(); err != nil {
				return err
			}
			if err := e.Start(); err != nil {
				return err
			}
			defer e.Shutdown()

			server := echo.New()
			server.HideBanner = true
			server.Use(middleware.Logger())
			server.Use(e.Middleware()...)
			e.Routes(server)

			addr := fmt.Sprintf("%s:%d", viper.GetString(engine.ConfInterface), viper.GetInt(engine.ConfPort))
			go func() {
				if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
					server.Logger.Fatal(err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}

	serve.Flags().String(engine.ConfInterface, "localhost", "Server interface binding")
	serve.Flags().IntP(engine.ConfPort, "p", 1324, "Server listen port")
	viper.BindPFlag(engine.ConfPort, serve.Flags().Lookup(engine.ConfPort))
	viper.BindPFlag(engine.ConfInterface, serve.Flags().Lookup(engine.ConfInterface))
	return serve
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aarovia.yaml)")
	rootCmd.PersistentFlags().AddFlagSet(e.FlagSet)
	viper.BindPFlags(e.FlagSet)

	rootCmd.AddCommand(serveCmd())

	viper.SetEnvPrefix("AAROVIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".aarovia" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".aarovia")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
