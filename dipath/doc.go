// Package dipath turns an undirected covering circuit into a route a vehicle
// can legally drive on a network with one-way streets.
//
// The circuit comes from the undirected projection, so some of its moves go
// against a one-way street. Build walks the circuit and, for each move
// src→dst with key k:
//
//   - if the network has a street src→dst with key k, it is driven as is;
//   - otherwise the shortest legal route src→dst is driven. When the street
//     exists the other way round (dst→src, key k) and no earlier move went
//     dst→src, the vehicle first drives the detour to dst, takes the street
//     back to src, and then drives the detour again, so the one-way street
//     itself is covered.
//
// Detours may repeat streets already driven. The route is correct, not
// minimal; shortening it is out of scope.
package dipath
