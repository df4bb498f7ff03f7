// Package analysis implements offline schedulability tests for periodic
// task sets on a single processor: the exact response-time (completion
// time) test, the Lehoczky scheduling-point test, the Liu & Layland
// rate-monotonic utilization bound, and the dynamic-priority (EDF/LLF)
// utilization bound. Each test is a pure function of an immutable
// model.TaskSet and terminates in bounded time.
package analysis
