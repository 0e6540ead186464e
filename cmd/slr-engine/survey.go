// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/slr-engine/internal/survey"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// openSurvey loads the configured spreadsheet. fields are the columns the
// command reads; they decide whether the first row is kept as a header.
func openSurvey(fields ...types.Field) (*survey.Survey, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return survey.Open(cfg, logger, fields...)
}
