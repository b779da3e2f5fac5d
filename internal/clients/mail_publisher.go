package clients

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"catalogo/internal/utils"
)

// MailPublisher hands mail events to the mail service without waiting for
// delivery. Emit enqueues and returns immediately; a single background
// worker does the actual POST. Delivery failures are logged and invisible
// to the caller.
type MailPublisher struct {
	baseURL string
	http    *http.Client

	queue chan mailEvent
	done  chan struct{}
	once  sync.Once
}

type mailEvent struct {
	Event   string
	Payload any
}

const mailQueueSize = 64

func NewMailPublisher(baseURL string, timeout time.Duration) *MailPublisher {
	p := &MailPublisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		queue:   make(chan mailEvent, mailQueueSize),
		done:    make(chan struct{}),
	}
	go p.worker()
	return p
}

// Emit never blocks. When the queue is full the event is dropped with a
// log line; the caller gets no delivery feedback either way.
func (p *MailPublisher) Emit(event string, payload any) {
	select {
	case p.queue <- mailEvent{Event: event, Payload: payload}:
	default:
		utils.LogEvent("", "mail", "emit_dropped", "fila de e-mail cheia, evento "+event+" descartado")
	}
}

// Close drains pending events and stops the worker.
func (p *MailPublisher) Close() {
	p.once.Do(func() {
		close(p.queue)
		<-p.done
	})
}

func (p *MailPublisher) worker() {
	defer close(p.done)
	for ev := range p.queue {
		p.post(ev)
	}
}

func (p *MailPublisher) post(ev mailEvent) {
	body, err := json.Marshal(ev.Payload)
	if err != nil {
		utils.LogEvent("", "mail", "emit_failed", "payload inválido para o evento "+ev.Event+": "+err.Error())
		return
	}

	url := p.baseURL + "/eventos/" + ev.Event
	resp, err := p.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		utils.LogEvent("", "mail", "emit_failed", "falha ao enviar evento "+ev.Event+": "+err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		utils.LogEvent("", "mail", "emit_failed", "api de e-mail respondeu status "+resp.Status)
		return
	}
	utils.LogEvent("", "mail", "emit", "evento "+ev.Event+" enfileirado na api de e-mail")
}
