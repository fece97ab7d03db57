package appcore

import (
	"io"

	"sigrank/internal/engine"
	"sigrank/internal/output"
	"sigrank/internal/writers"
)

// ResultWriterFactory binds a format and run metadata to the writers registry.
type ResultWriterFactory struct {
	Format string
	Meta   output.Meta
}

func NewResultWriterFactory(format string, meta output.Meta) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Meta: meta}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Scored, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Meta, bufSize)
}
