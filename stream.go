package pdf

import "io"

// Stream is an indirect object that carries a dictionary plus an
// associated byte payload (the content-stream bytes, for page content
// streams; this package does not interpret or apply filters, since the
// scope here is structural preservation of the object graph rather than
// stream-filter codecs).
type Stream struct {
	Dict Dict
	R    io.Reader
}

// PDF writes the stream's dictionary only; callers that serialize a full
// document are responsible for copying the payload bytes between the
// "stream" and "endstream" keywords, since Stream.R may be a one-shot
// reader that PDF itself must not consume twice.
func (s *Stream) PDF(w io.Writer) error {
	return s.Dict.PDF(w)
}
