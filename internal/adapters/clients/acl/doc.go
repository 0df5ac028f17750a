// Package acl translates downstream APIs into domain terms. Wire formats,
// status codes and error bodies of an external service stay inside this
// package; callers only see domain values and domain errors.
package acl
