// Package registry supplies the SPDX license and exception id sets the
// expression engine is built from.
//
// The Registry interface is the engine's only view of the license list:
// the registered id sets, case-insensitive canonicalization, and
// deprecation status. List is the concrete implementation, built from data
// in the official SPDX license-list JSON format (licenses.json and
// exceptions.json, as published with every license-list release).
//
// # Snapshots
//
// A List is immutable. The engine snapshots it at construction time, so
// multiple registries (say, the embedded snapshot and a test fixture) can
// coexist, each backing its own engine. To track a license-list file on
// disk, run a Watcher and rebuild the engine from each snapshot it delivers:
//
//	list := registry.Embedded()
//	engine := spdx.New(list)
//
//	w, err := registry.NewWatcher("licenses.json", "exceptions.json", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go w.Watch(ctx, func(next *registry.List) {
//	    swapEngine(spdx.New(next))
//	})
//
// Fetching license-list releases over the network is deliberately out of
// scope; the watcher only observes local files.
package registry
