package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	controllerruntimemetrics "sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/openshift/ste-codec/pkg/ste"
)

const (
	MetricSTENamespace        = "stecodec"
	MetricSTESubsystemMatcher = "matcher"
)

var metricBuilderCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: MetricSTENamespace,
	Subsystem: MetricSTESubsystemMatcher,
	Name:      "builders_total",
	Help:      "The number of lookup builders initialized from a mask",
}, []string{"lookup"})

var metricTagCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: MetricSTENamespace,
	Subsystem: MetricSTESubsystemMatcher,
	Name:      "tags_total",
	Help:      "The number of STE tags encoded from a match value",
}, []string{"lookup"})

var metricErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: MetricSTENamespace,
	Subsystem: MetricSTESubsystemMatcher,
	Name:      "errors_total",
	Help:      "The number of failed builder initializations and tag encodings",
}, []string{"kind"})

// GetPrometheusStatisticNames returns all statistic metric names - to aid testing only.
func GetPrometheusStatisticNames() []string {
	return []string{
		MetricSTENamespace + "_" + MetricSTESubsystemMatcher + "_" + "builders_total",
		MetricSTENamespace + "_" + MetricSTESubsystemMatcher + "_" + "tags_total",
		MetricSTENamespace + "_" + MetricSTESubsystemMatcher + "_" + "errors_total",
	}
}

// Statistics records matcher activity. A nil *Statistics records nothing.
type Statistics struct {
	//regOnce ensures that we only register metrics once otherwise panic may occur
	regOnce sync.Once
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (m *Statistics) Register() {
	m.regOnce.Do(func() {
		controllerruntimemetrics.Registry.MustRegister(metricBuilderCount)
		controllerruntimemetrics.Registry.MustRegister(metricTagCount)
		controllerruntimemetrics.Registry.MustRegister(metricErrorCount)
	})
}

func (m *Statistics) BuilderInitialized(sb *ste.Builder) {
	if m == nil {
		return
	}
	metricBuilderCount.WithLabelValues(string(sb.Kind)).Inc()
}

func (m *Statistics) TagEncoded(sb *ste.Builder) {
	if m == nil {
		return
	}
	metricTagCount.WithLabelValues(string(sb.Kind)).Inc()
}

// Failed counts err under the label returned by ste.KindOf.
func (m *Statistics) Failed(err error) {
	if err == nil {
		return
	}
	m.FailedWith(ste.KindOf(err))
}

// FailedWith counts a failure whose cause is not an ste error.
func (m *Statistics) FailedWith(kind string) {
	if m == nil {
		return
	}
	metricErrorCount.WithLabelValues(kind).Inc()
}
