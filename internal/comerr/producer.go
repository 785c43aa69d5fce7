package comerr

import (
	"sync"
	"sync/atomic"
)

// Producer exposes non-fatal failures that were handled internally.
type Producer interface {
	Errors() <-chan error
	DroppedErrors() uint64
}

// DefaultProducer never blocks the sender: when nobody drains the channel,
// errors are counted and dropped.
type DefaultProducer struct {
	errorChan      chan error
	errorChanMutex sync.Mutex
	dropped        atomic.Uint64
}

func (p *DefaultProducer) Errors() <-chan error {
	p.errorChanMutex.Lock()
	defer p.errorChanMutex.Unlock()
	return p.errorChan
}

func (p *DefaultProducer) DroppedErrors() uint64 {
	return p.dropped.Load()
}

func (p *DefaultProducer) ConfigureErrors(chanBufferSize int) {
	p.CloseErrors()
	p.errorChanMutex.Lock()
	p.errorChan = make(chan error, chanBufferSize)
	p.errorChanMutex.Unlock()
}

func (p *DefaultProducer) SendError(err error) {
	p.errorChanMutex.Lock()
	defer p.errorChanMutex.Unlock()

	if p.errorChan != nil {
		select {
		case p.errorChan <- err:
			return
		default:
		}
	}
	p.dropped.Add(1)
}

func (p *DefaultProducer) CloseErrors() {
	p.errorChanMutex.Lock()
	defer p.errorChanMutex.Unlock()

	if p.errorChan != nil {
		close(p.errorChan)
		p.errorChan = nil
	}
}
