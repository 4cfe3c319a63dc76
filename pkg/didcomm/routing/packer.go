package routing

import "context"

// Packer is the external encryption collaborator. Given a plaintext message
// and the DID whose resolved document supplies the recipient keys, it
// returns the encrypted payload. The engine never looks inside the result;
// unpacking is equally outside its scope.
type Packer interface {
	Pack(ctx context.Context, plaintext []byte, to string) ([]byte, error)
}

// PackerFunc adapts a function to the Packer interface
type PackerFunc func(ctx context.Context, plaintext []byte, to string) ([]byte, error)

func (f PackerFunc) Pack(ctx context.Context, plaintext []byte, to string) ([]byte, error) {
	return f(ctx, plaintext, to)
}
