package core

// Transformer mutates a message list in place.
type Transformer interface {
	Transform(messages []Message) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(messages []Message, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(messages); err != nil {
			return err
		}
	}
	return nil
}
