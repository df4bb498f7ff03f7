package mqtt

import (
	"encoding/json"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/schedlab/rtfeas/core/analysis"
	coremetrics "github.com/schedlab/rtfeas/core/metrics"
	"github.com/schedlab/rtfeas/core/model"
	"github.com/schedlab/rtfeas/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Broker        string `json:"broker"`
	ClientID      string `json:"client_id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	RequestTopic  string `json:"request_topic"`
	ResponseTopic string `json:"response_topic"`
	QoS           byte   `json:"qos"`
}

// SetDefaults applies the default topic layout.
func (c *Config) SetDefaults() {
	if c.RequestTopic == "" {
		c.RequestTopic = "rtfeas/requests"
	}
	if c.ResponseTopic == "" {
		c.ResponseTopic = "rtfeas/verdicts"
	}
	if c.ClientID == "" {
		c.ClientID = "rtfeas"
	}
}

// AnalysisRequest is the wire form of a task set to analyze. Task order
// encodes priority, highest first.
type AnalysisRequest struct {
	RequestID string       `json:"request_id,omitempty"`
	Tasks     []model.Task `json:"tasks"`
}

// AnalysisReport is the wire form of the verdicts for one request. Tests
// that could not run carry their reason in Errors instead of a result.
type AnalysisReport struct {
	RequestID string                    `json:"request_id"`
	Results   []model.FeasibilityResult `json:"results,omitempty"`
	Errors    []string                  `json:"errors,omitempty"`
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Responder serves feasibility requests over MQTT: it subscribes to the
// request topic, runs the analysis suite on each received task set and
// publishes the report on the response topic. The analysis core stays a
// pure library; the responder is one of its callers.
type Responder struct {
	cli       pahoClient
	cfg       Config
	log       logger.Logger
	sink      coremetrics.MetricsSink
	analyzers []analysis.Analyzer
}

// NewResponder connects to the MQTT broker and subscribes to the request
// topic. A nil sink disables metrics recording.
func NewResponder(cfg Config, sink coremetrics.MetricsSink, log logger.Logger) (*Responder, error) {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	r := &Responder{cfg: cfg, log: log, sink: sink, analyzers: analysis.Suite()}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(cfg.RequestTopic, cfg.QoS, r.onRequest); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	r.cli = c
	return r, nil
}

func (r *Responder) onRequest(_ paho.Client, msg paho.Message) {
	var req AnalysisRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		r.log.Errorf("bad request payload: %v", err)
		return
	}
	report := r.Analyze(req)
	payload, err := json.Marshal(report)
	if err != nil {
		r.log.Errorf("marshal report: %v", err)
		return
	}
	if token := r.cli.Publish(r.cfg.ResponseTopic, r.cfg.QoS, false, payload); token.Wait() && token.Error() != nil {
		r.log.Errorf("publish report: %v", token.Error())
	}
}

// Analyze runs the full suite on the request's task set. Tests that reject
// the set (invalid parameters, explicit deadlines for the scheduling-point
// test) contribute an error entry instead of aborting the report.
func (r *Responder) Analyze(req AnalysisRequest) AnalysisReport {
	report := AnalysisReport{RequestID: req.RequestID}
	if report.RequestID == "" {
		report.RequestID = uuid.NewString()
	}

	ts, err := model.NewTaskSet(req.Tasks)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report
	}

	events := make([]coremetrics.AnalysisEvent, 0, len(r.analyzers))
	for _, a := range r.analyzers {
		res, err := a.Analyze(ts)
		if err != nil {
			report.Errors = append(report.Errors, a.Name()+": "+err.Error())
			continue
		}
		report.Results = append(report.Results, res)
		events = append(events, coremetrics.AnalysisEvent{
			RequestID:   report.RequestID,
			Test:        res.Test,
			Verdict:     res.Verdict,
			Utilization: res.Utilization,
			Bound:       res.Bound,
			TaskCount:   len(ts),
			Time:        time.Now(),
		})
	}
	if err := r.sink.RecordAnalysis(events); err != nil {
		r.log.Errorf("record analysis: %v", err)
	}
	return report
}

// Close disconnects from the broker.
func (r *Responder) Close() {
	if r.cli != nil && r.cli.IsConnected() {
		r.cli.Disconnect(250)
	}
}
