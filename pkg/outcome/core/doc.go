// Package core contains pipeline plumbing utilities: channel helpers,
// worker configuration via context, the locomotive that drives stages,
// and cancellation drains. It does not define business logic; instead
// it provides the scaffolding for package lite to run pipelines with
// controlled concurrency.
//
// Cancellation here means "stop invoking further stages". Drains may
// emit new failure outcomes for items that never ran, but chains
// already produced are immutable and pass through untouched.
package core
