// Package pipeline provides a framework for executing the stages of an
// organizing run in sequence.
//
// A run moves through fixed stages: resolving and validating the target
// path, sweeping the directory entries, and reporting. Each stage is
// implemented as a Step that receives the accumulated RunReport and can
// modify it.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
//  1. It allows easy addition/removal of steps without modifying core logic
//  2. It provides consistent error handling and logging across steps
//  3. It supports cancellation via context between stages
//
// A step can also end the run cleanly by marking the report aborted;
// the pipeline then stops without surfacing an error, which is how an
// invalid target path terminates a run with a zero tally.
package pipeline
