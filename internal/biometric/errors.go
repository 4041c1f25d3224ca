package biometric

import "errors"

// Business outcomes of feature extraction. These are denial conditions, not
// system errors: the decision engine turns them into denied decisions.
var (
	// ErrNoFaceDetected is returned when the encoder finds no face in the
	// submitted image.
	ErrNoFaceDetected = errors.New("no face detected in image")

	// ErrMultipleFaces is returned when the encoder finds more than one
	// face. Ambiguous probes are rejected rather than silently picking one.
	ErrMultipleFaces = errors.New("multiple faces detected in image")
)

// Infrastructure errors. These must remain distinguishable from the business
// outcomes above: an unreachable encoder is not an access denial.
var (
	// ErrExtractorUnavailable wraps transport failures and unexpected
	// responses from the face-encoding service.
	ErrExtractorUnavailable = errors.New("feature extractor unavailable")

	// ErrProbe is returned when the probe vector itself is unusable
	// (empty or of the wrong dimension). Probe-side failures abort the
	// whole matching operation, unlike per-candidate decrypt failures.
	ErrProbe = errors.New("invalid probe vector")
)
