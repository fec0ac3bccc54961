// Package models contains GORM persistence models that map to database tables.
// They are kept separate from domain entities so the domain layer carries no
// ORM tags; each model converts with ToDomain / FromDomain.
//
//   - base.go: AggregateModel, the shared key, timestamp and version columns
//   - catalog.go: products
//   - partner.go: clients and suppliers
//   - identity.go: users
//   - trade.go: sales
package models
