// Package session holds the current user of the client application.
//
// A Store keeps the user in memory and mirrors it, JSON encoded, to a
// repo.KVStore under a single fixed key. The store is constructed explicitly
// and handed to consumers through a context scope (WithStore / From), there is
// no package level instance.
//
//	kv, _ := fs.New("")
//	st, err := session.Open[User](ctx, kv, session.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	ctx = session.WithStore(ctx, st)
//	...
//	session.MustFrom[User](ctx).Login(ctx, User{ID: 1, Name: "Ann"})
package session
