package registryconst

const (
	// ErrIdentityExists is returned on attempt to register an identity
	// for an address that already has one.
	ErrIdentityExists = "identity already registered"
	// ErrIdentityNotFound is returned if the requested identity is missing.
	ErrIdentityNotFound = "identity does not exist"
	// ErrNotAuthenticated is returned when a mutating method is invoked
	// by an address without a registered identity.
	ErrNotAuthenticated = "identity is not registered"

	// ErrContentExists is returned on attempt to add content under an
	// already occupied ID.
	ErrContentExists = "content already exists"
	// ErrContentNotFound is returned if the requested content is missing.
	ErrContentNotFound = "content does not exist"

	// ErrShareExists is returned on attempt to share a file under an
	// already occupied ID.
	ErrShareExists = "file share already exists"
	// ErrShareNotFound is returned if the requested file share is missing.
	ErrShareNotFound = "file share does not exist"

	// ErrAccessDenied is returned when content removal is attempted by
	// an address that is neither the record owner nor the administrator.
	ErrAccessDenied = "access denied"

	// ErrInvalidOwner is thrown when an owner address has invalid format.
	ErrInvalidOwner = "invalid owner address"
	// ErrInvalidRecipient is thrown when a recipient address has invalid format.
	ErrInvalidRecipient = "invalid recipient address"
	// ErrInvalidContentID is thrown when a content or share ID is not a
	// 32-byte value.
	ErrInvalidContentID = "invalid content ID"
	// ErrInvalidHash is thrown when an integrity hash is not a 32-byte value.
	ErrInvalidHash = "invalid integrity hash"
	// ErrInvalidProof is thrown when an identity proof token is empty.
	ErrInvalidProof = "invalid identity proof"
	// ErrInvalidPayment is thrown when a negative payment is attached.
	ErrInvalidPayment = "negative payment amount"
)
