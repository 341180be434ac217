// Package bruteforce provides a point index that answers neighborhood queries
// by scanning every point. It is the reference the range tree is tested
// against and the cheap choice for very small point sets.
package bruteforce
