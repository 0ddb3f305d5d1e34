// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey         string   `json:"hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		SessionDuration Duration `json:"session_duration"`
		Themes          []string `json:"themes"`
		Languages       []string `json:"languages"`
		MailFrom        string   `json:"mail_from"`
		BaseURL         string   `json:"base_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		RelayURL string   `json:"relay_url"`
		APIKey   string   `json:"api_key"`
		Timeout  Duration `json:"timeout"`
	} `json:"mail,omitempty"`

	Cleanup struct {
		Months int    `json:"months"`
		Actor  string `json:"actor"`
	} `json:"cleanup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:         jsonCfg.App.HashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			Themes:          jsonCfg.App.Themes,
			Languages:       jsonCfg.App.Languages,
			MailFrom:        jsonCfg.App.MailFrom,
			BaseURL:         jsonCfg.App.BaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			RelayURL: jsonCfg.Mail.RelayURL,
			APIKey:   jsonCfg.Mail.APIKey,
			Timeout:  time.Duration(jsonCfg.Mail.Timeout),
		},
		Cleanup: Cleanup{
			Months: jsonCfg.Cleanup.Months,
			Actor:  jsonCfg.Cleanup.Actor,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
