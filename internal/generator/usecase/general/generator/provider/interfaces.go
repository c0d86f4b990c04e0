package provider

// NamedProvider interface implementation should return unique provider name,
// which is used as prefix of its method keys, e.g. "address" of "address.city".
type NamedProvider interface {
	Name() string
}

// Caller interface implementation should generate values by method name,
// it makes provider reachable through Generic.Call.
type Caller interface {
	NamedProvider
	// Methods should return names of supported methods
	Methods() []string
	// Call should generate value by method name
	Call(method string, params Params) (any, error)
}
