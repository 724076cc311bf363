package endee

import "context"

// Query runs a similarity search with the given options. Zero-valued tuning
// knobs take their documented defaults, then the request is validated
// against the engine contract before it is sent. The options value is not
// mutated.
func (i *indexImpl) Query(ctx context.Context, opts *QueryOptions) (*QueryResponse, error) {
	if i.name == "" {
		return nil, ErrEmptyIndexName
	}
	if opts == nil {
		opts = &QueryOptions{}
	}

	req := opts.withDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp QueryResponse
	if err := i.client.post(ctx, i.path("/query"), &req, &resp); err != nil {
		return nil, WrapError(err, "failed to query index")
	}
	return &resp, nil
}
