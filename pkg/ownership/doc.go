// Package ownership decides whether an authenticated caller may act on a
// stored resource.
//
// The outcome is one of three Decisions. A resource that does not exist is
// NotFound for every caller, and a resource that exists but belongs to
// someone else is Forbidden, so the two are never conflated.
//
//	dog, err := pets.FetchPet(ctx, id)
//	switch d, err := ownership.Check(caller.UserID, dog, err); {
//	case err != nil:
//	    // store failure
//	case d != ownership.Authorized:
//	    apierr.Write(w, d.Err("Dog"))
//	}
package ownership
