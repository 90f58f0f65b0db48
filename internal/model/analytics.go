package model

import "time"

// RewardAnalytics is an hourly reward aggregate keyed by supplier,
// application, service and hour bucket.
type RewardAnalytics struct {
	SupplierOperatorAddress    string  `json:"supplier_operator_address"`
	ApplicationAddress         string  `json:"application_address"`
	ServiceID                  string  `json:"service_id"`
	HourBucket                 Bucket  `json:"hour_bucket"`
	SubmissionCount            int64   `json:"submission_count"`
	TotalRewardsUpokt          float64 `json:"total_rewards_upokt"`
	TotalRelays                float64 `json:"total_relays"`
	TotalClaimedComputeUnits   float64 `json:"total_claimed_compute_units"`
	TotalEstimatedComputeUnits float64 `json:"total_estimated_compute_units"`
	AvgEfficiencyPercent       float64 `json:"avg_efficiency_percent"`
	AvgRewardPerRelay          float64 `json:"avg_reward_per_relay"`
	MaxRewardPerSubmission     float64 `json:"max_reward_per_submission"`
	MinRewardPerSubmission     float64 `json:"min_reward_per_submission"`
}

// PerformanceDataPoint is a validator performance aggregate. Bucket is zero
// for group_by=total queries.
type PerformanceDataPoint struct {
	Bucket                     Bucket  `json:"bucket"`
	SupplierOperatorAddress    string  `json:"supplier_operator_address"`
	OwnerAddress               string  `json:"owner_address"`
	Moniker                    string  `json:"moniker"`
	Submissions                int64   `json:"submissions"`
	TotalRelays                float64 `json:"total_relays"`
	TotalClaimedComputeUnits   float64 `json:"total_claimed_compute_units"`
	TotalEstimatedComputeUnits float64 `json:"total_estimated_compute_units"`
	AvgEfficiencyPercent       float64 `json:"avg_efficiency_percent"`
	AvgRewardPerRelay          float64 `json:"avg_reward_per_relay"`
	UniqueApplications         int64   `json:"unique_applications"`
	UniqueServices             int64   `json:"unique_services"`
}

// NetworkAverages are network-wide baselines. AvgEfficiency and
// AvgRewardPerRelay are nil when their weights summed to zero.
type NetworkAverages struct {
	AvgRewards        float64  `json:"avg_rewards"`
	AvgRelays         float64  `json:"avg_relays"`
	AvgEfficiency     *float64 `json:"avg_efficiency"`
	AvgRewardPerRelay *float64 `json:"avg_reward_per_relay"`
	SampleSize        int      `json:"sample_size"`
}

// TopPerformers summarises the top decile of suppliers by relay count.
type TopPerformers struct {
	RelaysThreshold  float64                `json:"relays_threshold"`
	RewardsThreshold float64                `json:"rewards_threshold"`
	AvgRelays        float64                `json:"avg_relays"`
	AvgEfficiency    float64                `json:"avg_efficiency"`
	SampleSize       int                    `json:"sample_size"`
	Top10Percent     []PerformanceDataPoint `json:"top10Percent"`
}

// TrendData is a parallel-array series. All slices share the same length.
type TrendData struct {
	Dates        []time.Time `json:"dates"`
	Rewards      []float64   `json:"rewards"`
	Relays       []float64   `json:"relays"`
	Efficiency   []float64   `json:"efficiency"`
	MovingAvg7d  []float64   `json:"movingAvg7d"`
	MovingAvg30d []float64   `json:"movingAvg30d"`
	Hourly       bool        `json:"hourly"`
}

// Len returns the number of points in the series.
func (t TrendData) Len() int {
	return len(t.Dates)
}

// Prediction is a forecast point.
type Prediction struct {
	Date                time.Time `json:"date"`
	PredictedRewards    float64   `json:"predicted_rewards"`
	PredictedRelays     float64   `json:"predicted_relays"`
	PredictedEfficiency float64   `json:"predicted_efficiency"`
	ConfidenceLower     float64   `json:"confidence_lower"`
	ConfidenceUpper     float64   `json:"confidence_upper"`
}

// AnomalyType classifies an anomaly.
type AnomalyType string

const (
	AnomalySpike                 AnomalyType = "spike"
	AnomalyDrop                  AnomalyType = "drop"
	AnomalyEfficiencyDegradation AnomalyType = "efficiency_degradation"
)

// Metric names used by anomalies.
const (
	MetricRewards    = "rewards"
	MetricRelays     = "relays"
	MetricEfficiency = "efficiency"
)

// Anomaly flags a sample whose z-score crossed the detection threshold.
// Deviation is the percent difference from the mean.
type Anomaly struct {
	Date      time.Time   `json:"date"`
	Type      AnomalyType `json:"type"`
	Metric    string      `json:"metric"`
	Value     float64     `json:"value"`
	Expected  float64     `json:"expected"`
	Deviation float64     `json:"deviation"`
}

// GrowthRates are percent changes of the latest reward value.
type GrowthRates struct {
	DayOverDay     float64 `json:"dayOverDay"`
	WeekOverWeek   float64 `json:"weekOverWeek"`
	MonthOverMonth float64 `json:"monthOverMonth"`
}

// SupplierDashboard bundles every analytics projection for one supplier.
type SupplierDashboard struct {
	SupplierAddress string           `json:"supplier_address"`
	Chain           string           `json:"chain"`
	Trend           TrendData        `json:"trend"`
	Predictions     []Prediction     `json:"predictions"`
	Anomalies       []Anomaly        `json:"anomalies"`
	Growth          GrowthRates      `json:"growth"`
	Network         *NetworkAverages `json:"network,omitempty"`
	TopPerformers   *TopPerformers   `json:"top_performers,omitempty"`
}
