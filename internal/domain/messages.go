// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

package domain

// User-facing strings. The application ships in French.
const (
	MsgSaved   = "Enregistré"
	MsgCreated = "Créé"

	MsgMeetingCreated  = "La réunion que vous avez soumise a bien été enregistrée"
	MsgMeetingJoined   = "Vous avez rejoint la réunion "
	MsgLocationCreated = "Le lieu que vous avez soumis a bien été enregistré"

	MsgErrorOccurred     = "Une erreur s'est produite"
	MsgErrorUnauthorized = "Vous n'êtes pas autorisé à effectuer cette manipulation"
	MsgErrorForbidden    = "L'action effectuée est interdite pour l'utilisateur"
	MsgErrorNotFound     = "La ressource demandée n'a pas été trouvée"
	MsgErrorServer       = "Une erreur s'est produite sur le serveur"
	MsgErrorUnexpected   = "Une erreur inattendue s'est produite"
)
