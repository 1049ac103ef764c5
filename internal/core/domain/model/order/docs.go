// Package order contains the Order aggregate and its lifecycle rules.
//
// An order moves through the statuses SUBMITTED, IN_FULFILLMENT, SHIPPED and
// DELIVERED. SUBMITTED is the only initial status and the only status from
// which cancellation is allowed; beyond that the model imposes no transition
// graph, so a status update may move an order to any enumerated value.
//
// Every accepted mutation increments the aggregate's version counter. The
// persistence layer conditions its writes on the previous version, which is
// what makes interactive updates, cancellation and the background sweep safe
// to race against each other on the same record.
package order
