package valto

// Package valto deserializes parsed-but-untyped data (JSON trees, YAML
// documents, query parameters) into Go values with precise, located errors.
//
// - An abstract value model (Value/Source) decouples decoding rules from
//   any one wire format; adapters live under source/.
// - Every failure is a structured ErrorKind raised at a Pointer; the
//   caller-chosen ErrorHandler decides between stopping at the first
//   problem (FailFast) and collecting all of them as Issues (Collect).
// - Decoding rules are Func[T] values composed from combinators
//   (StringOf, IntOf, SliceOf, ...), the Struct builder, and Union.
//
// Design policy:
// - Keep only public APIs in the root package; put support code under
//   internal/ and presentation under errmsg/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	src, err := jsonval.Bytes(data)
//	f := valto.Struct[Config]()  // register fields with valto.Field
//	cfg, err := valto.Deserialize(src, f.MustFinish(), valto.Collect())
