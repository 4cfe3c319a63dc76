package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	corecrypto "github.com/TelegramSam/didcomm-website-demo/pkg/core/crypto"
	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
	"github.com/TelegramSam/didcomm-website-demo/pkg/core/wallet"
	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
	peer "github.com/TelegramSam/didcomm-website-demo/pkg/dids/methods/peer"
)

func main() {
	endpoint := flag.String("endpoint", "http://127.0.0.1:3001", "Service endpoint URI (HTTP(S) URL or mediator DID)")
	preserveLongForm := flag.Bool("longForm", false, "Anchor the resolved document (and key ids) at the long form")
	flag.Parse()

	edKey, err := corecrypto.GenerateEd25519KeyPair()
	if err != nil {
		log.Fatalf("failed to generate Ed25519 key: %v", err)
	}
	xKey, err := corecrypto.GenerateX25519KeyPair()
	if err != nil {
		log.Fatalf("failed to generate X25519 key: %v", err)
	}

	doc := &dids.DidDocument{
		VerificationMethod: []*dids.VerificationMethod{
			{
				Id:                 "#key-1",
				Type:               dids.VerificationMethodTypeMultikey,
				PublicKeyMultibase: encoding.EncodeMultibase58(encoding.EncodeMulticodecKey(encoding.CodecEd25519Pub, edKey.PublicKey)),
			},
			{
				Id:                 "#key-2",
				Type:               dids.VerificationMethodTypeMultikey,
				PublicKeyMultibase: encoding.EncodeMultibase58(encoding.EncodeMulticodecKey(encoding.CodecX25519Pub, xKey.PublicKey)),
			},
		},
		Authentication: dids.VerificationMethodRefList{
			&dids.VerificationMethodRefString{Ref: "#key-1"},
		},
		KeyAgreement: dids.VerificationMethodRefList{
			&dids.VerificationMethodRefString{Ref: "#key-2"},
		},
		Service: []*dids.Service{
			{
				Id:   "#service-1",
				Type: dids.ServiceTypeDIDCommMessaging,
				ServiceEndpoint: &dids.ServiceEndpoint{
					Uri:    *endpoint,
					Accept: []string{"didcomm/v2"},
				},
			},
		},
	}

	longDid, err := peer.Encode(doc)
	if err != nil {
		log.Fatalf("failed to encode did document: %v", err)
	}
	shortDid, err := peer.LongToShort(longDid)
	if err != nil {
		log.Fatalf("failed to derive short form: %v", err)
	}

	resolved, err := peer.Resolve(longDid, *preserveLongForm)
	if err != nil {
		log.Fatalf("failed to resolve encoded did: %v", err)
	}

	seed, err := edKey.Seed()
	if err != nil {
		log.Fatalf("failed to extract Ed25519 seed: %v", err)
	}
	// Secret ids anchor to the resolved document id; the encryption layer
	// looks them up by these exact strings.
	edSecret, err := wallet.NewEd25519Secret(resolved.Id+"#key-1", seed, edKey.PublicKey)
	if err != nil {
		log.Fatalf("failed to build Ed25519 secret: %v", err)
	}
	xSecret, err := wallet.NewX25519Secret(resolved.Id+"#key-2", xKey.PrivateKey)
	if err != nil {
		log.Fatalf("failed to build X25519 secret: %v", err)
	}

	out := map[string]interface{}{
		"did":         longDid,
		"didShort":    shortDid,
		"didDocument": resolved,
		"secrets":     []*wallet.Secret{edSecret, xSecret},
		// Key ids under both anchors; only the ones matching the resolved
		// document id will find the secrets above.
		"keyIds": map[string][]string{
			"longForm":  {longDid + "#key-1", longDid + "#key-2"},
			"shortForm": {shortDid + "#key-1", shortDid + "#key-2"},
		},
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("failed to render output: %v", err)
	}
	fmt.Println(string(encoded))
}
