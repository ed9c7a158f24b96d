package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the size of a canonically encoded scalar, for every supported group.
	BytesScalar = 32

	// BytesSampledScalar is the number of uniform bytes reduced into a scalar.
	// Reducing 2⋅SecParam bits modulo a group order of about SecParam bits
	// leaves a statistical distance of at most 2^-SecParam from uniform.
	BytesSampledScalar = 2 * SecBytes // = 64

	// DigestLengthBytes is the length of the session identifiers produced by hash.Hash.
	DigestLengthBytes = SecBytes * 2 // = 64
)
