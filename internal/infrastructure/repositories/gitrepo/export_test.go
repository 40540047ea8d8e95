package gitrepo

// DetectProvider exports detectProvider for testing.
var DetectProvider = detectProvider //nolint:gochecknoglobals // test export

// ResolveAuth exports resolveAuth for testing.
var ResolveAuth = resolveAuth //nolint:gochecknoglobals // test export

// AuthHint exports authHint for testing.
var AuthHint = authHint //nolint:gochecknoglobals // test export
