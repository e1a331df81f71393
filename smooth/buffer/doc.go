// Package buffer provides the fixed-capacity sample window that backs the
// windowed smoothing filters. A Window holds the most recent samples in
// arrival order, evicting the oldest on overflow, and exposes its contents
// as a zero-allocation oldest-first view for the per-update hot path.
package buffer
