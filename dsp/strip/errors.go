package strip

import "errors"

var (
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("strip: invalid sample rate")
	// ErrInvalidBlockSize reports a non-positive maximum block size.
	ErrInvalidBlockSize = errors.New("strip: invalid block size")
	// ErrInvalidChannelCount reports a channel count other than 1 or 2.
	ErrInvalidChannelCount = errors.New("strip: invalid channel count")
	// ErrInvalidOption reports an engine option value out of range.
	ErrInvalidOption = errors.New("strip: invalid option")
)
