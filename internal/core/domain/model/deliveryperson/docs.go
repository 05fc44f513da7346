// Package deliveryperson provides the DeliveryPerson aggregate: a user
// authorized to carry out deliveries and to advance orders within their own
// assignments. The aggregate owns identity and the isActive eligibility flag;
// derived performance statistics live in the domain services layer.
package deliveryperson
