// Package paginate manages asynchronous, paginated loading of options for a
// searchable dropdown.
//
// Loaded pages are cached per search text, so returning to a text that was
// already searched does not load it again. Pagination threads an opaque
// cursor, the "additional" value, through successive loads of the same text.
//
// Supply a [LoadOptions] function and create a [Paginator] with [New], then
// forward user events to it:
//
//	load := func(ctx context.Context, search string, loaded []Option, page int) (paginate.Response[Option, int], error) {
//		opts, more, err := api.Search(ctx, search, page)
//		return paginate.Response[Option, int]{Options: opts, HasMore: more, Additional: page + 1}, err
//	}
//
//	p := paginate.New(load, paginate.Params[Option, int]{DefaultAdditional: 1})
//	p.SetMenuIsOpen(ctx, true)                   // loads the first page of ""
//	p.SetInputValue(ctx, "react")                // loads the first page of "react"
//	p.RequestOptions(ctx, paginate.ReasonScroll) // loads the next page
//	view := p.Current()
//
// The state is a plain value produced by [Params.Reduce] from a small set of
// [Action]s. [Store] is its only writer, and [Paginator] is the only component
// that calls the loader. While a key is loading, further requests for it are
// no-ops, so each key has at most one load in flight.
//
// A failed load removes the key from the cache and returns a [*LoadError], so
// the next request retries from the first page.
package paginate
