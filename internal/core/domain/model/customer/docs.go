// Package customer holds the Customer aggregate: the owner of orders and the
// back-reference set linking a customer to every order they have not deleted.
package customer
