// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package services provides suture.Service wrappers for MovieMatch components.

HTTPServerService adapts *http.Server's blocking ListenAndServe to suture's
Serve(ctx) and drains connections on shutdown.

CatalogService owns catalog reloads. Reload is called at startup and by the
API reload endpoint; Serve adds fsnotify-based file watching with a debounce
and an optional reload interval:

	svc := services.NewCatalogService(engine, services.CatalogServiceConfig{
	    Path:          "/data/movies.csv",
	    Watch:         true,
	    WatchDebounce: 2 * time.Second,
	}, logger)
	if _, err := svc.Reload(ctx, metrics.TriggerStartup); err != nil {
	    return err
	}
	tree.AddCatalogService(svc)

The directory is watched rather than the file so that replacing the file by
rename is picked up.
*/
package services
