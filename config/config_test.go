// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	type args struct {
		key   string
		value interface{}
	}

	tests := []struct {
		name string
		args []args
		want Config
	}{
		{
			"defaults",
			nil,
			Config{
				BaseURL:   DefaultBaseURL,
				Timeout:   30 * time.Second,
				UserAgent: "goeis",
				Results:   DefaultResults,
			},
		},
		{
			"overrides, trailing slash trimmed",
			[]args{
				{"base-url", "http://localhost:8080/"},
				{"timeout", "5s"},
				{"results", 25},
				{"verbose", true},
			},
			Config{
				BaseURL:   "http://localhost:8080",
				Timeout:   5 * time.Second,
				UserAgent: "goeis",
				Results:   25,
				Verbose:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range tt.args {
				viper.Set(a.key, a.value)
			}
			defer func() {
				for _, a := range tt.args {
					viper.Set(a.key, nil)
				}
			}()

			assert.Equal(t, tt.want, *New())
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, *New(), *Default())
}
