// Copyright 2024 ChatLift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"fmt"
	"time"
)

const (
	GranularityHalfHour = "HALF_HOUR"
	GranularityDaily    = "DAILY"
	GranularityWeekly   = "WEEKLY"
	GranularityMonthly  = "MONTHLY"
)

// AnalyticsRequest is the common shape of the analytics routes: an ISO
// formatted time range and an optional granularity.
type AnalyticsRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity,omitempty"`
}

// TemplateAnalyticsRequest additionally selects the templates to report on.
// The Graph API only supports DAILY granularity for template analytics.
type TemplateAnalyticsRequest struct {
	AnalyticsRequest
	TemplateIds []string `json:"template_ids"`
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISOTime parses an ISO timestamp. Timestamps without an explicit
// offset are interpreted as UTC.
func ParseISOTime(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO formatted timestamp", value)
}

// UnixRange converts the request time range to UNIX seconds, the format the
// Graph analytics queries expect.
func (r *AnalyticsRequest) UnixRange() (int64, int64, error) {
	if r.StartDate == "" || r.EndDate == "" {
		return 0, 0, fmt.Errorf("start date and end date are required in ISO format")
	}

	start, err := ParseISOTime(r.StartDate)
	if err != nil {
		return 0, 0, err
	}

	end, err := ParseISOTime(r.EndDate)
	if err != nil {
		return 0, 0, err
	}

	return start.Unix(), end.Unix(), nil
}
