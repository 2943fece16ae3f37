package response

import "fieldflow/internal/usecase/interfaces"

type TranscriptionResponse struct {
	CustomerDetails string `json:"customer_details"`
	JobDescription  string `json:"job_description"`
	Urgency         string `json:"urgency"`
	Location        string `json:"location"`
}

func FromTranscription(r interfaces.TranscriptionResult) TranscriptionResponse {
	return TranscriptionResponse{
		CustomerDetails: r.CustomerDetails,
		JobDescription:  r.JobDescription,
		Urgency:         r.Urgency,
		Location:        r.Location,
	}
}

type CoordinationResponse struct {
	ActionTaken string `json:"action_taken"`
	Reason      string `json:"reason"`
}

func FromCoordination(r interfaces.CoordinationResult) CoordinationResponse {
	return CoordinationResponse{ActionTaken: r.ActionTaken, Reason: r.Reason}
}
