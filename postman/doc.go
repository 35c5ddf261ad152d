// Package postman solves the undirected Chinese Postman problem: the
// shortest closed walk that traverses every street at least once.
//
// Pipeline:
//
//  1. Odd-degree vertices are paired at minimum total shortest-path
//     distance (package matching).
//  2. A working copy of the component gains one synthetic edge per pair,
//     weighted by the pair's distance and tagged core.TrailAugmented. Every
//     vertex is now even.
//  3. Hierholzer's algorithm (package euler) walks the augmented graph.
//  4. Each synthetic edge in the walk is replaced by the real street chain it
//     stands for, so the returned circuit only references real edges.
//
// The circuit length is the sum of all street lengths plus the matching
// distance. For a graph whose degrees are already even no edge is added and
// every street appears exactly once.
//
// Directed input is projected with core.UndirectedProjection first; one-way
// restrictions are restored afterwards by package dipath.
package postman
