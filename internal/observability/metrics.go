package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels.
const (
	OpSignup     = "signup"
	OpUnregister = "unregister"
)

var (
	participationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registry",
		Name:      "participation_changes_total",
		Help:      "Successful signups and withdrawals per activity.",
	}, []string{"operation", "activity"})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Signup and withdrawal requests refused by the registry, by reason.",
	}, []string{"operation", "reason"})
	notificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "notifications",
		Name:      "failures_total",
		Help:      "Confirmation emails that could not be sent.",
	})
)

func init() {
	prometheus.MustRegister(participationTotal, rejectionsTotal, notificationFailures)
}

// RecordParticipationChange counts a successful signup or withdrawal.
func RecordParticipationChange(operation, activity string) {
	participationTotal.WithLabelValues(operation, activity).Inc()
}

// RecordRejection counts a refused request. reason is a short fixed token
// such as "not_found"; never pass user input.
func RecordRejection(operation, reason string) {
	rejectionsTotal.WithLabelValues(operation, reason).Inc()
}

// RecordNotificationFailure counts a confirmation email that failed.
func RecordNotificationFailure() {
	notificationFailures.Inc()
}
