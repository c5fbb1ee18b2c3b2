/*
Package subscription contains implementation of the ContentVault
Subscription token contract.

The contract keeps a NEP-17-like token used to pay for content
publication and pro subscriptions. Subscription activation debits the
payment from the holder's balance into a fee pool the administrator can
withdraw from. Whether a subscription is active is derived from its
stored expiry epoch, it is not maintained incrementally; the epoch
counter itself is advanced by the administrator.

# Contract storage model

Key-value storage format:
  - 'b' + Hash160 -> std.Serialize(Account)
    token balance of the address
  - 's' + Hash160 -> std.Serialize(Subscription)
    subscription record of the address
  - 'VaultSupply' -> int
    total token supply
  - 'tokenAdmin' -> Hash160
    administrator of the token
  - 'registryScriptHash' -> Hash160
    address of the registry contract allowed to forward payments
  - 'subscriptionFee' -> int
    minimal subscription activation payment
  - 'subscriptionPool' -> int
    accumulated activation payments not yet withdrawn
  - 'currentEpoch' -> int
    current epoch number

# Contract notifications

Transfer notification produced by every balance movement.

	Transfer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification accompanies Transfer and carries transfer details.

	TransferX
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. This notification is produced when the administrator
emits new tokens by invoking Mint method.

	Mint
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. This notification is produced when the
administrator pays out of the fee pool by invoking Withdraw method.

	Withdraw
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

SubscriptionActivated notification. This notification is produced when a
subscription is created by invoking ActivateSubscription method.

	SubscriptionActivated
	  - name: owner
	    type: Hash160
	  - name: expiresAt
	    type: Integer

NewEpoch notification. This notification is produced when the epoch
counter is advanced by invoking NewEpoch method.

	NewEpoch
	  - name: epoch
	    type: Integer
*/
package subscription
