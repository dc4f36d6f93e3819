package utils

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocidocs_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ocidocs_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocidocs_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ocidocs_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"api"})

	// ConvertTime은 페이지 마크다운 변환 시간을 측정합니다
	ConvertTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ocidocs_page_convert_time_seconds",
		Help:    "페이지 마크다운 변환 시간(초)",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
	})

	// CacheCounter는 페이지 캐시 적중/미스 수를 추적합니다
	CacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocidocs_page_cache_total",
		Help: "페이지 캐시 조회 수",
	}, []string{"result"})

	// ServerMetric은 서버 상태(부하, 건강, 용량) 게이지입니다
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ocidocs_server_status",
		Help: "서버 상태 게이지",
	}, []string{"server", "metric"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocidocs_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})
)

// InitMetrics는 모든 메트릭을 등록합니다
func InitMetrics() {
	// 모든 메트릭을 기본 레지스트리에 등록
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ApiCallCounter)
	prometheus.MustRegister(ApiResponseTime)
	prometheus.MustRegister(ConvertTime)
	prometheus.MustRegister(CacheCounter)
	prometheus.MustRegister(ServerMetric)
	prometheus.MustRegister(ErrorCounter)

	fmt.Println("메트릭 초기화 완료")
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method string, path string, status int, duration float64) {
	statusText := fmt.Sprintf("%d", status)
	RequestCounter.WithLabelValues(method, path, statusText).Inc()
	ResponseTime.WithLabelValues(method, path, statusText).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordCacheLookup은 페이지 캐시 조회 결과를 기록합니다
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheCounter.WithLabelValues(result).Inc()
}

// RecordConvertTime은 페이지 변환 시간을 기록합니다
func RecordConvertTime(duration float64) {
	ConvertTime.Observe(duration)
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(serverName string, metric string, value float64) {
	ServerMetric.WithLabelValues(serverName, metric).Set(value)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}
