// Package transaction runs application work atomically on top of ports.UnitOfWork.
//
// A Runner starts one serializable transaction per attempt, hands the unit of work to
// the caller's function and commits it. The unit of work travels in the context so a
// transition that triggers another transition (edit re-drafting an order) joins the
// outer transaction instead of opening a second one. Transient conflicts reported by the
// store are retried with exponential backoff.
package transaction
