// Package pipeline runs an ordered list of named steps over one shared record collection.
//
// Every step exposes the same operation, Apply, which receives the collection by pointer.
// Steps built with FilterPrint or CustomLogic only ever see a record.View of it, so they cannot
// change the stored records; steps built with Action may reorder or otherwise change them.
// Steps run one at a time in the order they were added, and a later step always observes what
// earlier steps did to the collection.
//
// When the collection is empty the runner announces the step, prints a notice and skips its body.
//
// Options implementing model.PipelineOption are notified when steps are added, completed or
// skipped, and when the run finishes. The measure and drawer packages provide such options.
package pipeline
