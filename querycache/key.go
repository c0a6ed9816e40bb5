package querycache

// Key addresses one logical server-backed resource: a resource name plus an
// optional scoping parameter, e.g. the member list of one family.
type Key struct {
	Resource string
	Scope    string

	// public keys may be read without an authenticated session, e.g.
	// invitation-token lookups reached from the activation screen.
	public bool
}

func NewKey(resource string) Key {
	return Key{Resource: resource}
}

func NewScopedKey(resource, scope string) Key {
	return Key{Resource: resource, Scope: scope}
}

func NewPublicKey(resource string) Key {
	return Key{Resource: resource, public: true}
}

func (k Key) String() string {
	if k.Scope == "" {
		return k.Resource
	}
	return k.Resource + "[" + k.Scope + "]"
}
