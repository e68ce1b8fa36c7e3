// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package submitter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailed  = "failed"
)

var (
	deployTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appd_deploy_requests_total",
			Help: "Total number of deploy requests by result",
		},
		[]string{"result"},
	)

	deployDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "appd_deploy_duration_seconds",
			Help:    "Time spent writing the objects of one deploy",
			Buckets: prometheus.DefBuckets,
		},
	)

	stepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appd_deploy_steps_total",
			Help: "Total number of object writes by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	rollbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "appd_deploy_rollbacks_total",
			Help: "Total number of failed deploys that ran compensation",
		},
	)
)

func observeDeploy(result string, start time.Time) {
	deployTotal.WithLabelValues(result).Inc()
	deployDuration.Observe(time.Since(start).Seconds())
}
