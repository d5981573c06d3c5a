package block

import (
	"fmt"

	"github.com/arloliu/endio/errs"
	"github.com/arloliu/endio/format"
	"github.com/arloliu/endio/internal/options"
)

// settings holds the configuration shared by Encoder and Decoder.
type settings struct {
	compression format.CompressionType
}

// Option configures an Encoder or Decoder at construction time.
type Option = options.Option[*settings]

func defaultSettings() settings {
	return settings{compression: format.CompressionNone}
}

// WithCompression selects the compression applied to encoded blocks.
//
// The decoder must be configured with the same compression type the encoder
// used; the default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(s *settings) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		s.compression = compression

		return nil
	})
}
