// Copyright © 2018 Grafana Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/grafana/mt-statsd/logger"
	"github.com/grafana/mt-statsd/statsd"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "mt-statsd",
	Short: "Sends statsd measurements to a collector",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return fmt.Errorf("failed to parse log-level, %s", err.Error())
		}
		log.SetLevel(lvl)
		rate := viper.GetFloat64("sample-rate")
		if rate <= 0 || rate > 1 {
			return fmt.Errorf("sample-rate must be in (0,1], got %v", rate)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mt-statsd.yaml)")
	rootCmd.PersistentFlags().String("host", "localhost", "statsd collector hostname or IPv4 address")
	rootCmd.PersistentFlags().Int("port", 8125, "statsd collector UDP port")
	rootCmd.PersistentFlags().String("prefix", "", "prefix for every key. used as is, include a trailing dot if you want one")
	rootCmd.PersistentFlags().Float64("sample-rate", 1, "fraction of measurements to send, in (0,1]")
	rootCmd.PersistentFlags().String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")
	viper.BindPFlags(rootCmd.PersistentFlags())

	log.SetFormatter(&logger.TextFormatter{
		TimestampFormat: logger.TimestampFormat,
		ModuleName:      "mt-statsd",
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mt-statsd")
	}

	viper.SetEnvPrefix("MT_STATSD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Infof("using config file %s", viper.ConfigFileUsed())
	}
}

// newClient returns a client opened against the configured collector.
// failures to open are logged by the client itself, in which case every measurement is dropped.
func newClient() *statsd.Client {
	c := statsd.New(statsd.WithPrefix(viper.GetString("prefix")))
	c.Open(viper.GetString("host"), viper.GetInt("port"))
	return c
}

func sampleRate() float32 {
	return float32(viper.GetFloat64("sample-rate"))
}
