/*
Package registry contains implementation of the ContentVault Registry
contract.

Registry is an authenticated key-value store mapping identity and content
keys to records. Every address starts by registering an Identity record;
content publication and file sharing require that record to exist.
Content removal is allowed for the record owner and for the registry
administrator. Payments attached to content publication are forwarded to
the administrator through the subscription token contract.

# Contract storage model

Key-value storage format:
  - 'i' + Hash160 -> std.Serialize(Identity)
    identity record of the address
  - 'c' + 32-byte content ID -> std.Serialize(Content)
    published content record
  - 'f' + 32-byte file ID -> std.Serialize(FileShare)
    file share record
  - 'o' + Hash160 + 32-byte file ID -> file ID
    secondary index of file shares by owner
  - 'registryAdmin' -> Hash160
    administrator of the registry
  - 'tokenScriptHash' -> Hash160
    address of the subscription token contract used for payments

# Contract notifications

IdentityRegistered notification. This notification is produced when a new
identity is registered by invoking RegisterIdentity method.

	IdentityRegistered
	  - name: owner
	    type: Hash160
	  - name: platform
	    type: String

ContentAdded notification. This notification is produced when new content
is published by invoking AddContent method.

	ContentAdded
	  - name: id
	    type: ByteArray
	  - name: title
	    type: String
	  - name: owner
	    type: Hash160

FileShared notification. This notification is produced when a file is
shared by invoking ShareFile method.

	FileShared
	  - name: id
	    type: ByteArray
	  - name: owner
	    type: Hash160
	  - name: recipient
	    type: Hash160

ContentRemoved notification. This notification is produced when content is
removed by invoking DeleteContent method.

	ContentRemoved
	  - name: id
	    type: ByteArray
	  - name: owner
	    type: Hash160
*/
package registry
