// Package async runs a single cancellable unit of work and tracks its lifecycle.
//
// A Controller wraps a work function and exposes the status, result and failure of its
// most recent execution. Each call to Execute cancels the attempt that is still in flight
// and starts a new one; only the most recently started attempt may update the visible
// state, whatever order the attempts finish in.
//
// Cancellation is cooperative. The work function receives a context.Context that is
// cancelled when the attempt is superseded or the controller is disposed, and should check
// it between steps. A work function that ignores the context still cannot overwrite newer
// state: its outcome is discarded once it returns.
//
// Basic usage:
//
//	ctrl := async.New(func(ctx context.Context) ([]content.FAQ, error) {
//		return store.FAQs(ctx)
//	}, true)
//	defer ctrl.Dispose()
//
//	st := ctrl.State()
//	switch st.Status {
//	case async.StatusSuccess:
//		render(st.Result)
//	case async.StatusError:
//		renderError(st.Err)
//	}
package async
