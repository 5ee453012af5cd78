// Package download simulates game downloads for signed-in users.
//
// Nothing is fetched. Each queued item "transfers" its install size at a
// configured speed, in ticks, so front ends can show real progress.
//
// # Manager
//
// The Manager coordinates the queue:
//
//  1. Enqueue items (duplicates are ignored)
//  2. Start transfers the pending items concurrently
//  3. Progress reports bytes and files across the whole queue
//
// # Basic Usage
//
//	manager := download.NewManager(download.Options{}, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	manager.Enqueue(item)
//	if err := manager.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Options.Concurrency limits how many items transfer at once. Start may be
// called again while an earlier call is running; each call takes only the
// items that were still pending.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    ItemID  string
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The callback may be invoked from several goroutines at once.
package download
